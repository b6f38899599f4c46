package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for product files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported products file format")

// FileSource serves products loaded once from a JSON, YAML or CSV file.
type FileSource struct {
	path     string
	products map[string]schema.Product
	ids      []string // sorted
}

var _ contract.ProductSource = &FileSource{} // Compile-time check

// productsDocument is the wrapped form of a products file: {"products": [...]}.
type productsDocument struct {
	Products []schema.Product `json:"products" yaml:"products"`
}

// NewFileSource loads a products file, picking the decoder from its extension.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products []schema.Product
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		products, err = decodeJSONProducts(data)
	case ".yaml", ".yml":
		products, err = decodeYAMLProducts(data)
	case ".csv":
		products, err = decodeCSVProducts(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q (use .json, .yaml, .yml or .csv)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return newFileSource(path, products)
}

func newFileSource(path string, products []schema.Product) (*FileSource, error) {
	fs := &FileSource{
		path:     path,
		products: make(map[string]schema.Product, len(products)),
		ids:      make([]string, 0, len(products)),
	}
	for i, p := range products {
		if strings.TrimSpace(p.ProductID) == "" {
			return nil, fmt.Errorf("product at position %d has no product_id", i)
		}
		if name, ok := nonFiniteField(p); ok {
			return nil, fmt.Errorf("product %q has a non-finite %s", p.ProductID, name)
		}
		if _, dup := fs.products[p.ProductID]; dup {
			return nil, fmt.Errorf("duplicate product_id %q in %s", p.ProductID, path)
		}
		fs.products[p.ProductID] = p
		fs.ids = append(fs.ids, p.ProductID)
	}
	slices.Sort(fs.ids)
	return fs, nil
}

// Path returns the file the products were loaded from.
func (fs *FileSource) Path() string {
	return fs.path
}

// GetProducts returns the products in the requested order.
func (fs *FileSource) GetProducts(ctx context.Context, ids []string) ([]schema.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	products := make([]schema.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := fs.products[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", contract.ErrProductNotFound, id)
		}
		products = append(products, p)
	}
	return products, nil
}

// ListProducts returns up to limit products ordered by id. A limit of 0 means no limit.
func (fs *FileSource) ListProducts(ctx context.Context, limit int) ([]schema.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := fs.ids
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	products := make([]schema.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, fs.products[id])
	}
	return products, nil
}

// decodeJSONProducts accepts a top-level array or a {"products": [...]} object.
func decodeJSONProducts(data []byte) ([]schema.Product, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []schema.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, err
		}
		return products, nil
	}
	var doc productsDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// decodeYAMLProducts accepts a top-level sequence or a mapping with a products key.
func decodeYAMLProducts(data []byte) ([]schema.Product, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return []schema.Product{}, nil
	}
	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		var products []schema.Product
		if err := node.Decode(&products); err != nil {
			return nil, err
		}
		return products, nil
	}
	var doc productsDocument
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// productFields maps each JSON field name of schema.Product to its struct field index.
var productFields = func() map[string]int {
	t := reflect.TypeFor[schema.Product]()
	fields := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = i
		}
	}
	return fields
}()

// nonFiniteField reports a number field holding NaN or an infinity.
// YAML accepts .nan and .inf, and the ranking engine only orders finite values.
func nonFiniteField(p schema.Product) (string, bool) {
	v := reflect.ValueOf(p)
	for name, idx := range productFields {
		f := v.Field(idx)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		if f.Kind() == reflect.Float64 && (math.IsNaN(f.Float()) || math.IsInf(f.Float(), 0)) {
			return name, true
		}
	}
	return "", false
}

// decodeCSVProducts reads a header row of product field names, then one product per row.
// Empty cells stay null. Unknown columns are ignored.
func decodeCSVProducts(r io.Reader) ([]schema.Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []schema.Product{}, nil
	}
	if err != nil {
		return nil, err
	}
	columns := make([]int, len(header))
	hasID := false
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		idx, ok := productFields[name]
		if !ok {
			columns[i] = -1
			continue
		}
		columns[i] = idx
		hasID = hasID || name == "product_id"
	}
	if !hasID {
		return nil, errors.New("csv header must include product_id")
	}

	products := []schema.Product{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var p schema.Product
		v := reflect.ValueOf(&p).Elem()
		for i, cell := range record {
			if columns[i] < 0 {
				continue
			}
			if err := setField(v.Field(columns[i]), strings.TrimSpace(cell)); err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", line, header[i], err)
			}
		}
		products = append(products, p)
	}
	return products, nil
}

// setField parses a CSV cell into a product field. Empty cells leave the field at its zero value,
// which is nil for optional fields.
func setField(field reflect.Value, cell string) error {
	if cell == "" {
		return nil
	}
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if err := setField(ptr.Elem(), cell); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cell)
	case reflect.Float64:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite number %q", cell)
		}
		field.SetFloat(v)
	case reflect.Int:
		v, err := strconv.Atoi(cell)
		if err != nil {
			return err
		}
		field.SetInt(int64(v))
	case reflect.Bool:
		v, err := contract.ParseBoolString(cell)
		if err != nil {
			return err
		}
		field.SetBool(v)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
