/*
`chat` package is a transport-agnostic implementation of the chatroom: the
session registry, the command parser and the command handlers.

This package should not know anything about listening sockets. Sessions wrap
any io.ReadWriteCloser, and every reply is framed by the message subpackage.

*/

package chat
