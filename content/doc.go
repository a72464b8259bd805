// Package content holds the Content Store: every piece of text and every image
// reference shown on the site, organized by page.
//
// A Store is a plain value. It is built once, either from Default or by
// loading a YAML file, and then handed to the renderer, which only reads it.
// Slice order is display order for paragraphs, timeline entries, gallery
// images and style cards; nothing in this package sorts or validates.
package content
