package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectFromURL(t *testing.T) {
	b := &GCSBucket{bucket: "collabster-media"}

	obj, err := b.objectFromURL("https://storage.googleapis.com/collabster-media/portfolio/u1/1700000000000-x.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "portfolio/u1/1700000000000-x.jpg", obj)

	_, err = b.objectFromURL("https://storage.googleapis.com/other-bucket/x.jpg")
	assert.Error(t, err)

	_, err = b.objectFromURL("https://example.com/x.jpg")
	assert.Error(t, err)
}
