// Package javadoc reads API-documentation metadata packaged in zip
// archives and resolves public documentation URLs for classes.
//
// An archive keeps one XML entry per class at its root (for example
// "java.lang.String.xml") plus an optional "info.xml" descriptor with
// library metadata. A Library is a lightweight handle onto one such
// archive: it loads the descriptor once at construction and opens the
// archive per operation, never holding it open between calls.
//
// URLs are resolved either by convention (baseUrl + slash-separated
// class name + ".html") or through the descriptor's URL pattern, a
// small placeholder language documented on Library.URL.
package javadoc
