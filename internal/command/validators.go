// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/staranto/brewfmt/internal/filters"
	"github.com/staranto/brewfmt/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	for _, v := range output.Formats {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", output.Formats)
}

func SortValidator(value any) error {
	spec, _ := value.(string)
	return output.SortRecords(nil, spec)
}

func FilterValidator(value any) error {
	spec, _ := value.(string)
	_, err := filters.BuildFilters(spec)
	return err
}
