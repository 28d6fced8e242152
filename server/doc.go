// Package server provides the HTTP front end: an upload form, a search
// results view, and a highlighted-PDF download.
//
// The server is stateless. Uploaded documents are processed within a
// single request and never written to disk; the download form resubmits
// the file rather than referencing a stored copy.
package server
