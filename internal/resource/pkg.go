package resource

import (
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Packages struct {
	*registry.Resource[model.PackageDTO, model.Package]
}

func NewPackages(gw *gateway.Client, cache *registry.Cache) *Packages {
	return &Packages{registry.New(gw, cache, registry.Spec[model.PackageDTO, model.Package]{
		Type:     "Package",
		Path:     "/Package",
		FromDTO:  mapper.Package,
		ID:       func(p model.Package) int64 { return p.ID },
		ToCreate: func(p model.Package) any { return mapper.PackageCreate(p) },
		ToUpdate: func(p model.Package) any { return mapper.PackageCreate(p) },
	})}
}
