package samplesheet

import (
	"fmt"
	"strings"
)

// RowChecker validates each row of one samplesheet against its layout's
// filename rules. Checked rows accumulate in Rows in input order.
type RowChecker struct {
	Layout Layout
	Rows   []Row

	seen map[samplePair]struct{}
}

// samplePair is the uniqueness key: the same sample may appear on several
// lines only when each line points at a different VCF (multiple runs of one
// experiment).
type samplePair struct {
	sample string
	vcf    string
}

// Check validates one row's filename suffixes and the uniqueness of its
// (sample, vcf) pair, then records the row.
func (c *RowChecker) Check(row Row) error {
	for i, field := range c.Layout.PathFields {
		pv := row.Paths[i]
		if !strings.HasSuffix(pv.Path, field.Suffix) {
			return fmt.Errorf("line %d: unexpected %s file extension: %s. The filename should end with: %s", row.Line, pv.Field, pv.Path, field.Suffix)
		}
	}

	pair := samplePair{sample: row.Sample, vcf: row.Paths[0].Path}
	if c.seen == nil {
		c.seen = make(map[samplePair]struct{})
	}
	if _, dup := c.seen[pair]; dup {
		return fmt.Errorf("line %d: the pair of sample name and VCF must be unique: %s, %s", row.Line, row.Sample, row.Paths[0].Path)
	}
	c.seen[pair] = struct{}{}

	c.Rows = append(c.Rows, row)

	return nil
}

// RenameReplicates renames every checked sample to carry a _T{n} suffix,
// where n counts that sample's runs in sheet order. Samples with a single run
// become sample_T1.
func (c *RowChecker) RenameReplicates() {
	counts := make(map[string]int)
	for i := range c.Rows {
		sample := c.Rows[i].Sample
		counts[sample]++
		c.Rows[i].Sample = fmt.Sprintf("%s_T%d", sample, counts[sample])
	}
}
