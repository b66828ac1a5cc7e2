package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/itm-clinic/clinic-client/client"
)

// cliNavigator stands in for the browser location. The current page is the
// command being run; a redirect prints how to sign in again.
type cliNavigator struct {
	mu   sync.Mutex
	out  io.Writer
	page string
}

var _ client.Navigator = (*cliNavigator)(nil)

func newCLINavigator(out io.Writer, page string) *cliNavigator {
	return &cliNavigator{out: out, page: page}
}

func (n *cliNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.page
}

func (n *cliNavigator) Redirect(target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "Vui lòng đăng nhập lại bằng `clinicctl login` (%s)\n", target)
}
