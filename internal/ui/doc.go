// Package ui builds frame strings from the application state. Rendering reads
// state and never mutates it; the only side effect is the cover cache
// request issued through Covers.Get.
package ui
