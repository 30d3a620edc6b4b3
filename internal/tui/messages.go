package tui

// recordsLoadedMsg reports completion of a record store refresh.
type recordsLoadedMsg struct {
	err error
}

// exportDoneMsg reports completion of an export triggered from the browser.
type exportDoneMsg struct {
	err  error
	path string
}
