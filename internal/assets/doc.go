// Package assets discovers the static files that get embedded.
//
// # Collection
//
// A Collector is bound to one input root. Collect walks the tree and returns
// every regular file as a File pair:
//
//	File{
//	    RelPath: "css/app.css",             // forward slashes, no leading slash
//	    Path:    "/abs/root/css/app.css",   // where to read the bytes
//	}
//
// Directories, symlinks to directories, broken links, sockets and devices
// are skipped. A symlink that resolves to a regular file is kept under its
// own name.
//
// # Ordering
//
// Results are sorted byte-wise by RelPath. The order is part of the output
// contract: two runs over the same tree must produce identical generated
// sources, whatever order the filesystem lists entries in.
package assets
