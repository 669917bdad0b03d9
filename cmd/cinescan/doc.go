// Command cinescan resolves film alias queries and scans text for film
// mentions using a fuzzy alias index built from a catalog file or SQLite
// store.
package main
