// Package asm implements the assembler for the Little Man Computer.
//
// Assembly runs in stages, each consuming the whole output of the last:
//
//	Lex      source text (with EOF_SENTINEL appended) to tokens
//	Resolve  label declarations and references to addresses
//	Parse    tokens to instructions
//
// and the cpu package encodes the instructions to words.
//
// The source language is one instruction per line:
//
//	loop:   INP         ; label declaration, then a mnemonic
//	        BRZ 'done   ; label reference
//	        STA $(done + 1)
//	        BRA 'loop
//	done:   HLT
//
// Mnemonics are case insensitive. Operands are decimal addresses, label
// references, or $(...) compile-time expressions evaluated with every
// label and predefine in scope.
package asm
