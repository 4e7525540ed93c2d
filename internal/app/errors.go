package app

import "github.com/pkg/errors"

// ErrHeadless is returned by Window in builds without the ebiten tag.
var ErrHeadless = errors.New("the window requires building with the 'ebiten' tag; use -out to record instead")
