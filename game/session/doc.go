// Package session manages the lifecycle of concurrently running games.
//
// Each session pairs a dealt board with bookkeeping: the shuffle seed (so a
// deal can be reproduced), creation and last-accessed timestamps, and the
// number of moves played. Sessions are identified by 4-character IDs and are
// held in memory only; there is no save/load.
package session
