// Package highlight styles fenced code with chroma.
//
// Output is inline-styled spans rather than CSS classes so the rendered page
// needs no companion stylesheet for code. Background colours are left to the
// page's code container.
package highlight
