// Package templates is the catalog of built-in style templates. The catalog
// is fixed at compile time: default (GB/T 9704 official documents), formal
// (business documents) and academic (papers). Resolution always hands out a
// deep copy, so callers can edit freely without contaminating the catalog.
package templates
