// Package paths вычисляет пути коллекций документного хранилища.
// Единственная точка адресации: публичные и приватные копии одного документа
// различаются только путём коллекции, id совпадает.
package paths

import "fmt"

const (
	CollectionPackages     = "packages"
	CollectionUserProfiles = "userProfile"
	CollectionRewardGrants = "rewardGrants"

	// ProfileDocID приватная коллекция userProfile содержит единственный документ.
	ProfileDocID = "profile"
)

type Resolver struct {
	appID string
}

func NewResolver(appID string) *Resolver {
	return &Resolver{appID: appID}
}

// Public путь общей коллекции, читаемой любой аутентифицированной ролью.
func (r *Resolver) Public(collection string) string {
	return fmt.Sprintf("artifacts/%s/public/data/%s", r.appID, collection)
}

// Private путь коллекции конкретного пользователя. ownerID принимается as is.
func (r *Resolver) Private(collection, ownerID string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/%s", r.appID, ownerID, collection)
}

// Resolve общий вход: пустой ownerID означает публичную коллекцию.
func (r *Resolver) Resolve(collection, ownerID string) string {
	if ownerID == "" {
		return r.Public(collection)
	}
	return r.Private(collection, ownerID)
}
