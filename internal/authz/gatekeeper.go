package authz

import (
	"context"

	"lebonmeeple/internal/entities"
	"lebonmeeple/internal/repositories"
	apperrors "lebonmeeple/pkg/errors"

	"go.uber.org/zap"
)

// Gatekeeper tranche la question "l'acteur peut-il toucher cette ressource ?".
// Règle unique du produit: le propriétaire de l'enregistrement, ou un ADMIN.
type Gatekeeper struct {
	postRepo    repositories.PostRepositoryInterface
	commentRepo repositories.CommentRepositoryInterface
	logger      *zap.Logger
}

func NewGatekeeper(
	postRepo repositories.PostRepositoryInterface,
	commentRepo repositories.CommentRepositoryInterface,
	logger *zap.Logger,
) *Gatekeeper {
	return &Gatekeeper{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func hasAdminRole(roles []string) bool {
	for _, role := range roles {
		if role == entities.RoleAdmin {
			return true
		}
	}
	return false
}

// CheckOwnership charge la ressource visée et compare son propriétaire à
// l'acteur. Renvoie nil si l'accès est permis, une erreur 403 sinon.
func (g *Gatekeeper) CheckOwnership(ctx context.Context, actorID uint64, actorRoles []string, res Resource, targetID uint64) error {
	if hasAdminRole(actorRoles) {
		return nil
	}

	switch res {
	case ResourceUser:
		// pas de ligne à charger: l'id du chemin est directement comparé
		if actorID == targetID {
			return nil
		}
		return apperrors.NewForbiddenError("Ce profil ne vous appartient pas")

	case ResourcePost:
		post, err := g.postRepo.FindPost(ctx, targetID)
		if err != nil {
			g.logger.Warn("Gatekeeper: billet cible introuvable",
				zap.Uint64("postID", targetID), zap.Error(err))
			return apperrors.NewForbiddenError("Billet introuvable")
		}
		if post.UserID == actorID {
			return nil
		}
		return apperrors.NewForbiddenError("Ce billet ne vous appartient pas")

	case ResourceComment:
		comment, err := g.commentRepo.FindComment(ctx, targetID)
		if err != nil {
			g.logger.Warn("Gatekeeper: commentaire cible introuvable",
				zap.Uint64("commentID", targetID), zap.Error(err))
			return apperrors.NewForbiddenError("Commentaire introuvable")
		}
		if comment.UserID == actorID {
			return nil
		}
		return apperrors.NewForbiddenError("Ce commentaire ne vous appartient pas")

	default:
		return apperrors.ErrForbidden
	}
}
