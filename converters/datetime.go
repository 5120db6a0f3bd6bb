package converters

import (
	"time"

	"github.com/Station-Manager/errors"

	"github.com/migimunz/v8serialize"
)

// Date converts between a dynamic date string and time.Time. Read accepts
// YYYYMMDD and YYYY-MM-DD; write emits YYYY-MM-DD. A zero time has no
// dynamic representation and fails the write.
func Date() v8serialize.Converter[time.Time] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (time.Time, error) {
			const op errors.Op = "converters.Date"
			s, err := v8serialize.String.Read(eng, v)
			if err != nil {
				return time.Time{}, errors.New(op).Err(err)
			}
			var retVal time.Time
			switch len(s) {
			case 8:
				retVal, err = time.Parse("20060102", s)
			case 10:
				if s[4] == '-' && s[7] == '-' {
					retVal, err = time.Parse("2006-01-02", s)
				} else {
					return time.Time{}, errors.New(op).Msg(ErrMsgBadDateFormat)
				}
			default:
				return time.Time{}, errors.New(op).Msg(ErrMsgBadDateFormat)
			}
			if err != nil {
				return time.Time{}, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
			}
			return retVal, nil
		},
		func(eng v8serialize.Engine, val time.Time) (v8serialize.Value, error) {
			const op errors.Op = "converters.Date"
			if val.IsZero() {
				return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
			}
			return eng.NewString(val.Format("2006-01-02")), nil
		},
	)
}

// TimeOfDay converts between a dynamic time string and time.Time. Read
// accepts HHMM and HH:MM; write emits HH:MM.
func TimeOfDay() v8serialize.Converter[time.Time] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (time.Time, error) {
			const op errors.Op = "converters.TimeOfDay"
			s, err := v8serialize.String.Read(eng, v)
			if err != nil {
				return time.Time{}, errors.New(op).Err(err)
			}
			var retVal time.Time
			if len(s) == 5 && s[2] == ':' {
				retVal, err = time.Parse("15:04", s)
			} else if len(s) == 4 {
				retVal, err = time.Parse("1504", s)
			} else {
				return time.Time{}, errors.New(op).Msg(ErrMsgBadTimeFormat)
			}
			if err != nil {
				return time.Time{}, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
			}
			return retVal, nil
		},
		func(eng v8serialize.Engine, val time.Time) (v8serialize.Value, error) {
			return eng.NewString(val.Format("15:04")), nil
		},
	)
}
