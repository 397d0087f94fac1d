package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCatalogMalformed 在目录文件缺少必需列或无法解析时返回，启动期视为致命错误
var ErrCatalogMalformed = errors.New("malformed dish catalog")

// seasonAll 表示菜品四季皆宜
const seasonAll = "All"

// catalogColumns 列出目录 CSV 的必需列
var catalogColumns = []string{
	"dish_name",
	"dish_type",
	"ingredients",
	"dosha_suitable_for",
	"avoids_for",
	"season",
	"taste_profile",
	"effect",
}

// Dish 是菜品目录中的一条只读记录
// SuitableFor/AvoidsFor 为自由文本，按 doshaInText 子串语义匹配
type Dish struct {
	Name        string
	Type        string
	Ingredients string
	SuitableFor string
	AvoidsFor   string
	Season      string
	Taste       string
	Effect      string
}

// Catalog 持有启动时载入的菜品目录。
// 进程生命周期内只读，可被并发请求安全共享；派生的适配分
// 永远放在请求级的 ScoredDish 切片里，不回写目录本身。
type Catalog struct {
	dishes []Dish
}

// LoadCatalog 从 CSV 文件载入菜品目录；文件缺失视为致命错误。
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dish catalog: %w", err)
	}
	defer f.Close()

	return ParseCatalog(f)
}

// ParseCatalog 解析目录数据并校验必需列。
func ParseCatalog(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrCatalogMalformed, err)
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.TrimSpace(column)] = i
	}

	for _, column := range catalogColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrCatalogMalformed, column)
		}
	}

	var dishes []Dish
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
		}

		field := func(column string) string {
			i := index[column]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		dish := Dish{
			Name:        field("dish_name"),
			Type:        field("dish_type"),
			Ingredients: field("ingredients"),
			SuitableFor: field("dosha_suitable_for"),
			AvoidsFor:   field("avoids_for"),
			Season:      field("season"),
			Taste:       field("taste_profile"),
			Effect:      field("effect"),
		}

		// 空忌口视为无忌口，空季节视为四季皆宜
		if dish.Season == "" {
			dish.Season = seasonAll
		}

		dishes = append(dishes, dish)
	}

	return &Catalog{dishes: dishes}, nil
}

// Dishes 返回目录条目切片；调用方只读，不得修改。
func (c *Catalog) Dishes() []Dish {
	return c.dishes
}

// Len 返回目录条目数
func (c *Catalog) Len() int {
	return len(c.dishes)
}
