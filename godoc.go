/*
Package tcpchat is an implementation of a TCP server which serves a single
line-oriented chat room.

linestream subdirectory contains the newline framing shared by server and
client.

tcpd subdirectory contains the socket pieces which know nothing about chat.

chat subdirectory contains the chat-related pieces which know nothing about
sockets.

client subdirectory contains the terminal front-end.

The Host type is the glue between the tcpd and chat pieces.
*/
package tcpchat
