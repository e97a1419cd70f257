// Package relpath computes relative URLs between document output locations.
//
// It is pure path algebra over forward-slash segments: no filesystem access,
// identical behavior for paths that do not exist. Callers hand it the output
// location of the current document and the output location of a link target
// and get back the shortest relative URL from one to the other.
package relpath

import "strings"

// Resolve returns the relative path from the directory containing fromDoc to
// the target file. Both arguments are slash-separated output paths ending in
// a filename; "." segments are ignored on both sides.
func Resolve(fromDoc, target string) string {
	from := dirSegments(fromDoc)

	toAll := strings.Split(target, "/")
	filename := toAll[len(toAll)-1]
	to := dropDot(toAll[:len(toAll)-1])

	for len(from) > 0 && len(to) > 0 && from[0] == to[0] {
		from = from[1:]
		to = to[1:]
	}

	segments := make([]string, 0, len(from)+len(to)+1)
	for range from {
		segments = append(segments, "..")
	}
	segments = append(segments, to...)
	segments = append(segments, filename)
	return strings.Join(segments, "/")
}

// dirSegments splits a document path into its directory segments, dropping
// the trailing filename and any "." segments.
func dirSegments(path string) []string {
	parts := strings.Split(path, "/")
	return dropDot(parts[:len(parts)-1])
}

func dropDot(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "." {
			continue
		}
		out = append(out, s)
	}
	return out
}
