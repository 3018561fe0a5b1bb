// SPDX-License-Identifier: MIT

// Package comm is an in-process message-passing layer for lock-step workers.
//
// What:
//
//   - Run starts a fixed group of rank goroutines and supervises them: the
//     first failure cancels the group, so every peer blocked in Send or Recv
//     returns ErrAborted instead of waiting forever.
//   - Comm gives each rank point-to-point Send/Recv with its peers. Payloads
//     are copied on send; ranks never share slices.
//   - ExchangeHalo, AllreduceOr, ReduceMax and Gatherv are the collective
//     steps of a banded stencil: boundary rows out, halo rows in, one global
//     "changed" decision, one variable-size gather onto a root.
//
// Ordering:
//
//	Each (sender, receiver, tag) link is a FIFO with room for one message.
//	Under the lock-step protocol a link never holds more than one message
//	at a time, so sends complete without waiting for the matching receive.
//
// Errors:
//
//   - ErrBadSize: group of fewer than one rank.
//   - ErrBadRank: peer or root outside [0, size).
//   - ErrAborted: the group was cancelled while an operation was blocked.
//   - ErrShortMessage: a gathered payload disagrees with its announced size.
package comm
