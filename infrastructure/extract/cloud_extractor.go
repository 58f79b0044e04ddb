package extract

import (
	"regexp"
	"strconv"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.GroupExtractor = (*CloudExtractor)(nil)

// cloudPattern covers conventional layers (FEW040, BKN046CB), the
// no-cloud sentinels (SKC, NSC, NCD), vertical visibility (VV001), and
// masked height or type segments (BKN///, FEW020///).
var cloudPattern = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|SKC|NSC|NCD|VV)(\d{3}|///)?(CB|TCU|///)?$`)

// CloudExtractor claims cloud groups, appending layers in report order.
// Report order is preserved because it is significant for ceiling
// determination; layers are never sorted.
type CloudExtractor struct{}

// NewCloudExtractor creates a CloudExtractor.
func NewCloudExtractor() *CloudExtractor { return &CloudExtractor{} }

// Name returns the extractor identifier.
func (ce *CloudExtractor) Name() string { return "cloud" }

// Extract claims one cloud group. The three-digit segment is the layer
// base in hundreds of feet; a masked (///) or absent segment leaves the
// height nil.
func (ce *CloudExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	m := cloudPattern.FindStringSubmatch(tokens[pos])
	if m == nil {
		return 0, nil
	}

	layer := domain.CloudLayer{Cover: domain.Cover(m[1])}
	if m[2] != "" && m[2] != "///" {
		h, _ := strconv.Atoi(m[2])
		height := h * 100
		layer.Height = &height
	}
	if m[3] == "CB" || m[3] == "TCU" {
		layer.Convective = m[3]
	}

	rep.Cloud = append(rep.Cloud, layer)
	return 1, nil
}
