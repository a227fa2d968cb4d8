package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser  Role = "USUARIO"
	RoleAdmin Role = "ADMINISTRADOR"
)

// RoleList é o conjunto de papéis do usuário, persistido como texto
// separado por vírgula (ex.: "USUARIO,ADMINISTRADOR").
type RoleList []Role

func (r RoleList) Has(role Role) bool {
	for _, v := range r {
		if v == role {
			return true
		}
	}
	return false
}

func (r RoleList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(r))
	for _, v := range r {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ","), nil
}

func (r *RoleList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("roles: tipo inesperado %T", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*r = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make(RoleList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, Role(p))
		}
	}
	*r = out
	return nil
}
