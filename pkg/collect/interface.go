/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package collect

// ICollection is a group of elements which can be appended and enumerated
type ICollection[E any] interface {
	Add(e E)
	Len() int

	// Calls enum for each element in iteration order
	ForEach(enum func(E))
}
