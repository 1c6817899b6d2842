/*
Package ports declares the driven-side interfaces of the Automata engine,
following Hexagonal Architecture: the core depends on these contracts, and
adapters (memory, redis, http) implement or consume them.
*/
package ports
