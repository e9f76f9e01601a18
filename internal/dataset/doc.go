// Package dataset handles line-oriented dataset files. A dataset is a
// plain .txt file with one requirement per line; translation must keep
// the source and target files aligned line by line, so all reading,
// chunking and writing here preserves line order and count.
package dataset
