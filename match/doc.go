// Package match implements line-based query matching over extracted
// psych sheet text.
//
// Matching is case-insensitive and line-oriented. Two modes exist:
//
//   - team code: the query must appear as a free-standing token on the
//     line, so "MAC-MA" never matches inside "EMAC-MA"
//   - swimmer name: plain substring containment
//
// [Find] performs a single forward scan of the document's pages and
// plain-text lines and returns matches in page-then-line order. Matched
// lines keep their original, unnormalized text; the highlighter relies
// on that to locate line geometry later.
package match
