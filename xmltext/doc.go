// Package xmltext reads and writes the XML text form of document
// trees. The trees it exchanges are document objects: an object node
// whose single member is the root element, with attribute members,
// repeated element members, and the "." member for character data.
//
// The package is a text layer only. Which elements and attributes a
// document has, and in what order, is decided by the gomap walk that
// produced the tree.
package xmltext
