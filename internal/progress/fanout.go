// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"github.com/hashicorp/go-multierror"
)

// Sink bundles the two reporting functions a renderer exposes. A nil field
// means that side is not interested in reports.
type Sink struct {
	Msg MsgFunc
	Pos PosFunc
}

// Fanout combines several sinks into one. Every sink is invoked for every
// report, even when an earlier one fails; failures are aggregated and
// returned together.
func Fanout(sinks ...Sink) Sink {
	return Sink{
		Msg: func(msg string) error {
			var errs *multierror.Error

			for _, s := range sinks {
				if s.Msg == nil {
					continue
				}

				errs = multierror.Append(errs, s.Msg(msg))
			}

			return errs.ErrorOrNil()
		},
		Pos: func(pos float64) error {
			var errs *multierror.Error

			for _, s := range sinks {
				if s.Pos == nil {
					continue
				}

				errs = multierror.Append(errs, s.Pos(pos))
			}

			return errs.ErrorOrNil()
		},
	}
}
