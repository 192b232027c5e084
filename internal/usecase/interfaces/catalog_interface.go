package interfaces

import "colohub/internal/domain/entities"

//go:generate mockgen -source=catalog_interface.go -destination=mocks/catalog_mock.go -package=mocks

// ICatalog is the read-only product lookup collaborator. The commerce core
// never mutates catalog data.
type ICatalog interface {
	Get(key string) (entities.Product, bool)
	List() []entities.Product
}
