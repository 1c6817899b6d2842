/*
Package runner drives whole validation runs against an automaton: it resets
the machine, feeds the input one symbol at a time with optional animation
pacing, stops on the first rejection, classifies the outcome and obtains the
conclusion.

The pacing delay is purely presentational: the same final state and step
sequence result regardless of the delay, including zero. The Runner is the
caller-side loop of the engine's run state machine (Ready -> step* ->
Accepted | Rejected | Incomplete); the engine itself stays synchronous and
instantaneous.
*/
package runner
