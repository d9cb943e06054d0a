package registry

import (
	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/hub"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/scrollspy"
)

// Service keys shared between modules.
var (
	ContentStoreKey = Key[*content.Store]("content.store")
	TrackerKey      = Key[*scrollspy.Tracker]("scrollspy.tracker")
	PageBuilderKey  = Key[*page.Builder]("page.builder")
	LiveHubKey      = Key[*hub.Hub]("livereload.hub")
)
