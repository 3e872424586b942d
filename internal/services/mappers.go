package services

import (
	"time"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
)

// Projections: quels champs d'une entité sortent vers l'API.
// Le mot de passe ne traverse jamais cette frontière.

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func mapUserDTO(u *entities.User) dto.UserDTO {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return dto.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Roles:     roles,
		CreatedAt: fmtTime(u.CreatedAt),
		UpdatedAt: fmtTime(u.UpdatedAt),
	}
}

func mapShortUserDTO(u *entities.User) dto.ShortUserDTO {
	if u == nil {
		return dto.ShortUserDTO{}
	}
	return dto.ShortUserDTO{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

func mapGameDTO(g *entities.Game) dto.GameDTO {
	mechanics := g.Mechanics
	if mechanics == nil {
		mechanics = []string{}
	}
	return dto.GameDTO{
		ID:          g.ID,
		Name:        g.Name,
		Year:        g.Year,
		Rating:      g.Rating,
		Mechanics:   mechanics,
		Description: g.Description,
		Image:       g.Image,
		PlayersMin:  g.PlayersMin,
		PlayersMax:  g.PlayersMax,
		Duration:    g.Duration,
		Difficulty:  g.Difficulty,
	}
}

func mapCommentDTO(c *entities.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:        c.ID,
		Body:      c.Body,
		UserID:    c.UserID,
		PostID:    c.PostID,
		Author:    mapShortUserDTO(c.Author),
		CreatedAt: fmtTime(c.CreatedAt),
		UpdatedAt: fmtTime(c.UpdatedAt),
	}
}

func mapPostDTO(p *entities.Post) dto.PostDTO {
	postDTO := dto.PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Image:     p.Image,
		UserID:    p.UserID,
		Author:    mapShortUserDTO(p.Author),
		CreatedAt: fmtTime(p.CreatedAt),
		UpdatedAt: fmtTime(p.UpdatedAt),
	}
	for i := range p.Comments {
		postDTO.Comments = append(postDTO.Comments, mapCommentDTO(&p.Comments[i]))
	}
	for i := range p.Games {
		postDTO.Games = append(postDTO.Games, mapGameDTO(&p.Games[i]))
	}
	return postDTO
}
