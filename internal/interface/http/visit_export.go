package handlers

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

var visitCSVHeader = []string{"id", "contentId", "visitorList", "visitDate"}

// WriteVisitsCSV writes one row per visit under a fixed header. visitorList is a JSON array.
func WriteVisitsCSV(w io.Writer, visits []entity.VisitWithContent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(visitCSVHeader); err != nil {
		return err
	}
	for _, v := range visits {
		list := v.ListVisitor
		if list == nil {
			list = []string{}
		}
		visitors, err := json.Marshal(list)
		if err != nil {
			return err
		}
		row := []string{
			strconv.FormatInt(v.ID, 10),
			strconv.FormatInt(v.WisataID, 10),
			string(visitors),
			v.VisitDate.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// sendVisitsCSV writes visits to a temporary file in dir and sends it as an
// attachment named name. The file is removed once the response is done,
// whether or not the transfer succeeded.
func sendVisitsCSV(c *gin.Context, dir, name string, visits []entity.VisitWithContent) error {
	f, err := os.CreateTemp(dir, "visits-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := WriteVisitsCSV(f, visits); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.FileAttachment(f.Name(), name)
	return nil
}
