package ui

import (
	"github.com/unkn0wn-root/restpad/internal/history"
	"github.com/unkn0wn-root/restpad/internal/httpclient"
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
	statusSuccess
)

type statusMsg struct {
	text  string
	level statusLevel
}

type responseMsg struct {
	response *httpclient.Response
	err      error
	canceled bool
}

type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

type historySavedMsg struct {
	err error
}

type workspaceSavedMsg struct {
	err error
}
