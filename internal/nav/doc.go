// Package nav resolves the site's navigation definition (navbar items and the
// sidebar tree) against the set of known documents.
//
// Resolution is a pure function: the same tree and document set always yield
// the same menu. It fails with a configuration error naming the first entry
// that cannot be resolved: a page path with no document behind it, an external
// link that is not an absolute URI, an empty section or a duplicated sibling
// label.
package nav
