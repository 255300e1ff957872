package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/safekeeping/vddk-go/internal/profile"
	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// session is an initialized library with one open connection.
type session struct {
	profile *profile.File
	lib     *vddk.Library
	conn    *vddk.Connection
	remote  bool
}

func (g *globals) openLibrary(cmd *cobra.Command) (*profile.File, *vddk.Library, error) {
	f, err := g.loadProfile(cmd)
	if err != nil {
		return nil, nil, err
	}
	lib, err := vddk.Init(f.DiskConfig(g.logger))
	if err != nil {
		return nil, nil, err
	}
	return f, lib, nil
}

func (g *globals) openSession(cmd *cobra.Command) (*session, error) {
	f, lib, err := g.openLibrary(cmd)
	if err != nil {
		return nil, err
	}
	c, err := f.Lookup(g.connection)
	if err != nil {
		_ = lib.Exit()
		return nil, err
	}
	p, err := c.Params()
	if err != nil {
		_ = lib.Exit()
		return nil, err
	}

	var conn *vddk.Connection
	if p.IsLocal() {
		conn, err = lib.Connect(p)
	} else {
		conn, err = lib.ConnectEx(p, c.Options())
	}
	if err != nil {
		_ = lib.Exit()
		return nil, err
	}
	g.logger.Debug(cmd.Context(), "session opened", "params", p)
	return &session{profile: f, lib: lib, conn: conn, remote: !p.IsLocal()}, nil
}

func (s *session) openDisk(path string, write bool) (*vddk.Disk, error) {
	var flags params.OpenFlags
	if !write {
		flags |= params.OpenReadOnly
	}
	return s.conn.Open(path, flags)
}

func (s *session) Close() error {
	return errors.Join(s.conn.Disconnect(), s.lib.Exit())
}

func withSession(g *globals, fn func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		s, err := g.openSession(cmd)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, s.Close())
		}()
		return fn(cmd.Context(), cmd, s, args)
	}
}
