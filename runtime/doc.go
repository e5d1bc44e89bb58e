/*
Package runtime implements the runtime environment of the Brewin interpreter,
consisting of scopes, storage cells, reference slots, closure snapshots and
call frames.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Tags and Slots

Every variable is stored in a tag, which is a storage cell for a value.
A tag may be a slot instead: a slot holds no value of its own, but refers to
another tag. Reading and writing a slot follows the chain of slots to the
ultimate storage cell. Slots implement parameters passed by reference.

Environments

An environment is a chain of scopes, each holding a symbol table of tags.
Blocks push a scope when they start and pop it when they end. Lookup searches
scopes innermost to outermost. Environments may be snapshotted: a snapshot is
a structural copy with fresh tags, used as the captured environment of a
closure. Snapshots are kept in an arena and addressed by handle.

Call Frames

Call frames form the call stack of the interpreter. Each frame knows the
environment which is active during the call, which is the caller's environment
for calls to functions and a captured environment for calls to closures.
Popping a frame makes the caller's environment active again.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brewin.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("brewin.runtime")
}
