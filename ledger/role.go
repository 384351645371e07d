// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/itemledger/fault"
)

// Role - a capability granted to an account
type Role byte

// stored role codes
const (
	Administrator Role = 'A'
	Manufacturer  Role = 'M'
	Distributor   Role = 'D'
	Retailer      Role = 'R'
	Customs       Role = 'C'
)

var roleNames = map[Role]string{
	Administrator: "administrator",
	Manufacturer:  "manufacturer",
	Distributor:   "distributor",
	Retailer:      "retailer",
	Customs:       "customs",
}

// Roles - all roles in display order
func Roles() []Role {
	return []Role{Administrator, Manufacturer, Distributor, Retailer, Customs}
}

// RoleFromString - parse a role name
func RoleFromString(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return 0, fault.ErrInvalidRole
}

// String - the role name
func (role Role) String() string {
	name, ok := roleNames[role]
	if !ok {
		return "unknown"
	}
	return name
}

// IsValid - check the role is one of the known roles
func (role Role) IsValid() bool {
	_, ok := roleNames[role]
	return ok
}

// MarshalText - role name for JSON
func (role Role) MarshalText() ([]byte, error) {
	return []byte(role.String()), nil
}

// UnmarshalText - role from its JSON name
func (role *Role) UnmarshalText(s []byte) error {
	r, err := RoleFromString(string(s))
	if nil != err {
		return err
	}
	*role = r
	return nil
}
