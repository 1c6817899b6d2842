/*
Package definitions ships the concrete automaton definitions understood by the
engine, plus the Verify check that every shipped definition must pass.

A Definition is plain data (state and transition tables) together with two
function values: an optional symbol Matcher override and the Conclude
diagnostic that turns a finished run into a natural-language explanation.
Dispatch is by kind tag through ForKind; the engine itself stays fully shared
between definitions.
*/
package definitions
