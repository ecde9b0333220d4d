// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rod implements the read-only dictionary: a binary, memory
// mappable word store built once and then looked up many times without
// further allocation. It groups words by soundslike for the suggester's
// scan phases and indexes them by an open-addressing hash table for exact
// lookup.
package rod

// nextPrime returns the smallest prime >= n, used to size the hash
// table so that open-addressing probe sequences cover every slot. A
// build-time table this small only ever needs a handful of queries, so
// a direct trial-division search is simpler and just as fast in
// practice as a precomputed sieve.
func nextPrime(n int) int {
	if n < 2 {
		return 2
	}
	for {
		if isPrime(n) {
			return n
		}
		n++
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
