package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"agrovision/entities"
)

const (
	SheetFields     = "Fields"
	SheetActivities = "Activities"
	SheetStock      = "Stock"
)

// LoadXLSX reads fixtures from a workbook with one sheet per collection. A
// missing sheet keeps the built-in fixtures for that collection. Manual
// recommendations always come from Default.
func LoadXLSX(path string) (Data, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return Data{}, err
	}
	defer x.Close()

	d := Default()
	sheets := map[string]bool{}
	for _, s := range x.GetSheetList() {
		sheets[s] = true
	}

	if sheets[SheetFields] {
		rows, err := x.GetRows(SheetFields)
		if err != nil {
			return Data{}, err
		}
		if d.Fields, err = parseFields(rows); err != nil {
			return Data{}, err
		}
		// fixture activities point at fixture field ids
		d.Activities = nil
	}
	if sheets[SheetActivities] {
		rows, err := x.GetRows(SheetActivities)
		if err != nil {
			return Data{}, err
		}
		if d.Activities, err = parseActivities(rows); err != nil {
			return Data{}, err
		}
	}
	if sheets[SheetStock] {
		rows, err := x.GetRows(SheetStock)
		if err != nil {
			return Data{}, err
		}
		if d.Stock, err = parseStock(rows); err != nil {
			return Data{}, err
		}
	}

	if err := d.Validate(); err != nil {
		return Data{}, fmt.Errorf("seed workbook %s: %w", path, err)
	}
	return d, nil
}

// norm lowercases a header and drops BOM, spaces, dashes and underscores.
func norm(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

type table struct {
	head map[string]int
	rows [][]string
}

func newTable(sheet string, rows [][]string, required ...[]string) (*table, error) {
	if len(rows) == 0 {
		return &table{head: map[string]int{}}, nil
	}
	t := &table{head: map[string]int{}, rows: rows[1:]}
	for i, h := range rows[0] {
		t.head[norm(h)] = i
	}
	for _, aliases := range required {
		if t.col(aliases...) == -1 {
			return nil, fmt.Errorf("sheet %s missing column %s, found headers: %v", sheet, aliases[0], rows[0])
		}
	}
	return t, nil
}

func (t *table) col(keys ...string) int {
	for _, k := range keys {
		if idx, ok := t.head[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var (
	fieldIDCols    = []string{"id", "fieldid"}
	fieldNameCols  = []string{"name", "fieldname"}
	fieldCropCols  = []string{"croptype", "crop"}
	fieldAreaCols  = []string{"area", "acres", "areaacres"}
	fieldSoilCols  = []string{"soiltype", "soil"}
	fieldStatCols  = []string{"status", "stage"}
	fieldImageCols = []string{"imageurl", "image"}
)

func parseFields(rows [][]string) ([]entities.Field, error) {
	t, err := newTable(SheetFields, rows, fieldIDCols, fieldNameCols, fieldAreaCols)
	if err != nil {
		return nil, err
	}
	cID, cName, cCrop := t.col(fieldIDCols...), t.col(fieldNameCols...), t.col(fieldCropCols...)
	cArea, cSoil, cStat, cImg := t.col(fieldAreaCols...), t.col(fieldSoilCols...), t.col(fieldStatCols...), t.col(fieldImageCols...)

	out := []entities.Field{}
	for i, rec := range t.rows {
		if blank(rec) {
			continue
		}
		area, err := strconv.ParseFloat(cell(rec, cArea), 64)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: area %q: %w", SheetFields, i+2, cell(rec, cArea), err)
		}
		img := cell(rec, cImg)
		if img == "" {
			img = PlaceholderImage
		}
		out = append(out, entities.Field{
			ID:       cell(rec, cID),
			Name:     cell(rec, cName),
			CropType: cell(rec, cCrop),
			Area:     area,
			SoilType: cell(rec, cSoil),
			Status:   cell(rec, cStat),
			ImageURL: img,
		})
	}
	return out, nil
}

var (
	actIDCols    = []string{"id", "activityid"}
	actFieldCols = []string{"fieldid", "field"}
	actTitleCols = []string{"title", "name"}
	actDescCols  = []string{"description", "desc", "notes"}
	actDateCols  = []string{"date", "day"}
	actTypeCols  = []string{"type", "kind"}
)

func parseActivities(rows [][]string) ([]entities.Activity, error) {
	t, err := newTable(SheetActivities, rows, actIDCols, actTitleCols, actDateCols)
	if err != nil {
		return nil, err
	}
	cID, cField, cTitle := t.col(actIDCols...), t.col(actFieldCols...), t.col(actTitleCols...)
	cDesc, cDate, cType := t.col(actDescCols...), t.col(actDateCols...), t.col(actTypeCols...)

	out := []entities.Activity{}
	for _, rec := range t.rows {
		if blank(rec) {
			continue
		}
		typ := entities.ActivityType(strings.ToLower(cell(rec, cType)))
		if typ != entities.ActivityAIDerived {
			typ = entities.ActivityManual
		}
		out = append(out, entities.Activity{
			ID:          cell(rec, cID),
			FieldID:     cell(rec, cField),
			Title:       cell(rec, cTitle),
			Description: cell(rec, cDesc),
			Date:        cell(rec, cDate),
			Type:        typ,
		})
	}
	return out, nil
}

var (
	stockIDCols    = []string{"id", "stockid"}
	stockGrainCols = []string{"graintype", "grain", "crop"}
	stockQtyCols   = []string{"quantity", "qty", "amount"}
	stockUnitCols  = []string{"unit", "units"}
)

func parseStock(rows [][]string) ([]entities.StockItem, error) {
	t, err := newTable(SheetStock, rows, stockIDCols, stockGrainCols, stockQtyCols)
	if err != nil {
		return nil, err
	}
	cID, cGrain, cQty, cUnit := t.col(stockIDCols...), t.col(stockGrainCols...), t.col(stockQtyCols...), t.col(stockUnitCols...)

	out := []entities.StockItem{}
	for i, rec := range t.rows {
		if blank(rec) {
			continue
		}
		qty, err := strconv.Atoi(cell(rec, cQty))
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: quantity %q: %w", SheetStock, i+2, cell(rec, cQty), err)
		}
		unit := entities.Unit(strings.ToLower(cell(rec, cUnit)))
		if unit == "" {
			unit = entities.UnitKg
		}
		out = append(out, entities.StockItem{
			ID:        cell(rec, cID),
			GrainType: cell(rec, cGrain),
			Quantity:  qty,
			Unit:      unit,
		})
	}
	return out, nil
}
