package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"gramdiff/internal"
)

// BuildReportRows produces one row per username across the union of both
// category sets, sorted ascending.
func BuildReportRows(followers, following []string) []internal.ReportRow {
	inFollowers := make(map[string]struct{}, len(followers))
	for _, u := range followers {
		inFollowers[u] = struct{}{}
	}
	inFollowing := make(map[string]struct{}, len(following))
	for _, u := range following {
		inFollowing[u] = struct{}{}
	}

	union := make(map[string]struct{}, len(followers)+len(following))
	for u := range inFollowers {
		union[u] = struct{}{}
	}
	for u := range inFollowing {
		union[u] = struct{}{}
	}

	usernames := make([]string, 0, len(union))
	for u := range union {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	rows := make([]internal.ReportRow, 0, len(usernames))
	for _, u := range usernames {
		_, follower := inFollowers[u]
		_, followed := inFollowing[u]
		rows = append(rows, internal.ReportRow{
			Username:         u,
			InFollowing:      followed,
			InFollowers:      follower,
			NotFollowingBack: followed && !follower,
		})
	}
	return rows
}

func ExportReportToXLSX(rows []internal.ReportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"username", "in_following", "in_followers", "not_following_back"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Username)
		set(2, boolCell(row.InFollowing))
		set(3, boolCell(row.InFollowers))
		set(4, boolCell(row.NotFollowingBack))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func boolCell(v bool) string {
	if v {
		return "yes"
	}
	return ""
}
