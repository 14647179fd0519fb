package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn   *xgb.Conn
	XScreen *xproto.ScreenInfo
)

// InitX11 connects to the X server and caches the default screen, which
// carries the root window the desktop-clock mode draws on.
func InitX11() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(conn)
	XScreen = setup.DefaultScreen(conn)
	XConn = conn
	return nil
}

// CloseX11 drops the X connection. Safe to call when InitX11 never ran.
func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
		XScreen = nil
	}
}
