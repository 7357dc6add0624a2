// Package io provides the external devices of the Little Man Computer:
// the Tape console that services INP and OUT, and the Rom program image
// file format.
package io
