// Package assets provides the page templates and base stylesheet used to
// assemble article and index pages. Defaults are embedded in the binary;
// a FilesystemLoader lets users override individual assets from a directory.
package assets
