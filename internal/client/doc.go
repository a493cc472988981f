// Package client implements the interactive terminal client runtime.
//
// It wires the sign-in and unlock flows, the command loop, and the background
// sync and idle-lock workers into a single process lifecycle.
package client
