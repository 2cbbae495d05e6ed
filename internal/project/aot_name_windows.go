//go:build windows

package project

// aotLibraryName is the file name of the AOT compiled application library.
const aotLibraryName = "app.so"
