/*
Package pcomb is a parser combinator toolbox.

Parsers are plain Go values which are composed from smaller parsers: literals,
character classes, sequences, alternatives and repetitions. A composed parser
is applied to an input stream and produces a result, backtracking the stream
whenever a sub-parser fails. Package structure is as follows:

■ result: Package result implements the results of parse runs, i.e. atoms and
flat sequences of atoms, together with the rules for merging them.

■ stream: Package stream implements input streams with lookahead and
cheap save/restore of the read position.

■ comb: Package comb implements the combinators and a set of pre-built
character classes.

■ registry: Package registry holds named parsers, used by command line tools.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcomb
