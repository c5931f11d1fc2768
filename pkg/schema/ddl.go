package schema

import (
	"fmt"
	"reflect"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	var columns []string
	for _, f := range fields(model) {
		columns = append(columns, fmt.Sprintf("    %s %s", f.db, f.ddl))
	}

	pk := primaryKey(model)
	if len(pk) > 1 {
		columns = append(columns,
			fmt.Sprintf("    PRIMARY KEY (%s)", strings.Join(pk, ", ")))
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

type field struct {
	index int
	db    string
	ddl   string
	gorm  string
}

func fields(model any) []field {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var res []field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		dbTag := f.Tag.Get("db")
		ddlTag := f.Tag.Get("ddl")
		if dbTag != "" && ddlTag != "" {
			res = append(res, field{
				index: i,
				db:    dbTag,
				ddl:   ddlTag,
				gorm:  f.Tag.Get("gorm"),
			})
		}
	}
	return res
}

// primaryKey returns columns of a composite primary key. Single column
// keys are declared in the column DDL.
func primaryKey(model any) []string {
	var res []string
	for _, f := range fields(model) {
		if strings.Contains(f.ddl, "PRIMARY KEY") {
			return nil
		}
		if strings.Contains(f.gorm, "primaryKey") {
			res = append(res, f.db)
		}
	}
	return res
}

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	fs := fields(model)
	res := make([]string, len(fs))
	for i, f := range fs {
		res[i] = f.db
	}
	return res
}

// Values returns column values of a model in field order. Nil pointers
// become nil, other pointers are dereferenced.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	fs := fields(model)
	res := make([]any, len(fs))
	for i, f := range fs {
		fv := v.Field(f.index)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				res[i] = nil
				continue
			}
			fv = fv.Elem()
		}
		res[i] = fv.Interface()
	}
	return res
}

// InsertSQL returns a parameterized INSERT statement for a model.
func InsertSQL(model DDLGenerator) (string, error) {
	cols := Columns(model)
	q, _, err := sq.Insert(model.TableName()).
		Columns(cols...).
		Values(make([]any, len(cols))...).
		ToSql()
	return q, err
}

func (c Creature) TableDDL() string { return generateDDL(c, c.TableName()) }
func (c Creature) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_creatures_name ON creatures(name);",
	}
}
func (c Creature) TableName() string { return "creatures" }

func (ct CreatureType) TableDDL() string { return generateDDL(ct, ct.TableName()) }
func (ct CreatureType) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_creature_types_type ON creature_types(type_id);",
	}
}
func (ct CreatureType) TableName() string { return "creature_types" }

func (cs CreatureStat) TableDDL() string   { return generateDDL(cs, cs.TableName()) }
func (cs CreatureStat) IndexDDL() []string { return []string{} }
func (cs CreatureStat) TableName() string  { return "creature_stats" }

func (ca CreatureAbility) TableDDL() string { return generateDDL(ca, ca.TableName()) }
func (ca CreatureAbility) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_creature_abilities_ability ON creature_abilities(ability_id);",
	}
}
func (ca CreatureAbility) TableName() string { return "creature_abilities" }

func (m LevelUpMove) TableDDL() string { return generateDDL(m, m.TableName()) }
func (m LevelUpMove) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_level_up_moves_move ON level_up_moves(move_id);",
	}
}
func (m LevelUpMove) TableName() string { return "level_up_moves" }

func (m Move) TableDDL() string   { return generateDDL(m, m.TableName()) }
func (m Move) IndexDDL() []string { return []string{} }
func (m Move) TableName() string  { return "moves" }

func (md MoveDetail) TableDDL() string   { return generateDDL(md, md.TableName()) }
func (md MoveDetail) IndexDDL() []string { return []string{} }
func (md MoveDetail) TableName() string  { return "move_details" }

func (a Ability) TableDDL() string   { return generateDDL(a, a.TableName()) }
func (a Ability) IndexDDL() []string { return []string{} }
func (a Ability) TableName() string  { return "abilities" }

func (t Type) TableDDL() string   { return generateDDL(t, t.TableName()) }
func (t Type) IndexDDL() []string { return []string{} }
func (t Type) TableName() string  { return "types" }

func (s Stat) TableDDL() string   { return generateDDL(s, s.TableName()) }
func (s Stat) IndexDDL() []string { return []string{} }
func (s Stat) TableName() string  { return "stats" }

func (bi BundleInfo) TableDDL() string   { return generateDDL(bi, bi.TableName()) }
func (bi BundleInfo) IndexDDL() []string { return []string{} }
func (bi BundleInfo) TableName() string  { return "bundle_info" }
