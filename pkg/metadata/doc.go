// Package metadata reads and writes the makky metadata file.
//
// The metadata file is a plain UTF-8 text file made of alternating lines:
//
//	/home/me/dotfiles/vimrc
//	.vimrc
//	/home/me/dotfiles/config/nvim
//	.config/nvim
//
// Each pair declares a link: the first line is the absolute source path,
// the second the target path relative to a target root chosen at link
// time. Registering only appends; every check (source existence, target
// occupancy, duplicate targets) happens when the entries are read, and
// all validation failures of one read are reported together.
package metadata
