package class

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// RemoveDuplicates deletes redundant classes. Two classes are duplicates
// when they share datetime, studio and the same set of dancers (order
// ignored). The first class of each group, in load order, survives. The
// whole pass runs in one transaction; any failure rolls everything back.
func (r *Repository) RemoveDuplicates(ctx context.Context) (int, error) {
	deleted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var all []Class
		if err := tx.Preload("Dancers").Find(&all).Error; err != nil {
			return err
		}
		log.Printf("dedup: loaded %d classes", len(all))

		groups := map[string][]Class{}
		var order []string
		for _, c := range all {
			key := duplicateKey(c)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], c)
		}

		for _, key := range order {
			members := groups[key]
			if len(members) < 2 {
				continue
			}
			log.Printf("dedup: group %s has %d duplicates, keeping %s",
				key, len(members), members[0].ID)
			for _, dup := range members[1:] {
				if err := tx.Exec("DELETE FROM class_dancer_association WHERE class_id = ?", dup.ID).Error; err != nil {
					return err
				}
				if err := tx.Delete(&Class{}, "class_id = ?", dup.ID).Error; err != nil {
					return err
				}
				deleted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func duplicateKey(c Class) string {
	ids := make([]string, 0, len(c.Dancers))
	for _, d := range c.Dancers {
		ids = append(ids, d.ID)
	}
	sort.Strings(ids)
	return fmt.Sprintf("%d|%s|%s", c.DateTime.UTC().UnixNano(), c.StudioID, strings.Join(ids, ","))
}
