// Package process ties a renderer subprocess and its children to one process
// group, so cancelling the command also stops anything the docutils front-end
// script spawned.
package process
