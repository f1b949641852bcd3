package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"

	interf "github.com/glkeru/kvote/internal/interfaces"
	model "github.com/glkeru/kvote/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Справочники: CRUD поверх MasterStorage плюс CSV импорт/экспорт
type MasterService struct {
	logger *zap.Logger
	db     interf.MasterStorage
}

func NewMasterService(logger *zap.Logger, db interf.MasterStorage) *MasterService {
	return &MasterService{logger, db}
}

var idolCSVHeaders = []string{"name", "groupName", "imageUrl"}

// обязательные колонки, imageUrl опциональна
var idolCSVRequired = []string{"name", "groupName"}

// Импорт айдолов из CSV: валидация заголовка, построчная валидация со сбором
// ошибок, валидные строки сохраняются. Частичный импорт допустим.
func (m *MasterService) ImportIdolsCSV(ctx context.Context, r io.Reader) (imported int, errs []model.CSVError, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, []model.CSVError{{Line: 0, Error: fmt.Sprintf("CSV parse error: %v", err)}}, nil
	}

	// заголовок
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, h := range idolCSVRequired {
		if _, ok := cols[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return 0, []model.CSVError{{Line: 0, Error: "missing required columns: " + strings.Join(missing, ", ")}}, nil
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	// построчная валидация
	var idols []model.Idol
	line := 1 // строка заголовка
	for {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		line++
		if rerr != nil {
			errs = append(errs, model.CSVError{Line: line, Error: rerr.Error()})
			continue
		}

		name := field(record, "name")
		group := field(record, "groupName")
		if name == "" || group == "" {
			errs = append(errs, model.CSVError{Line: line, Error: "name and groupName are required"})
			continue
		}
		idols = append(idols, model.Idol{
			Name:      name,
			GroupName: group,
			ImageURL:  field(record, "imageUrl"),
		})
	}

	// сохранение валидных строк
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	var mu sync.Mutex
	for _, idol := range idols {
		idol := idol
		g.Go(func() error {
			_, serr := m.db.SaveIdol(gctx, idol)
			if serr != nil {
				return serr
			}
			mu.Lock()
			imported++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return imported, errs, err
	}
	return imported, errs, nil
}

// Экспорт айдолов в CSV
func (m *MasterService) ExportIdolsCSV(ctx context.Context, w io.Writer) error {
	idols, err := m.db.ListIdols(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(idolCSVHeaders); err != nil {
		return err
	}
	for _, idol := range idols {
		if err := writer.Write([]string{idol.Name, idol.GroupName, idol.ImageURL}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
