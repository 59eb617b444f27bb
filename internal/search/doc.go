// Package search filters the lines of an in-memory document by a query.
//
// Two matching policies are provided: case-sensitive substring containment
// and case-insensitive containment on Unicode-lowercased forms. Results are
// sub-slices of the input string, so no line text is copied and callers get
// lines back in their original casing and order.
package search
