package service

import (
	"time"

	"github.com/chirpmux/chirpmux/model"
	"github.com/chirpmux/chirpmux/utils"
	"github.com/chirpmux/chirpmux/utils/metrics"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TapOutcome is the variant returned by a tap: created, replaced or cleared.
type TapOutcome string

const (
	TapCreated  TapOutcome = "created"
	TapReplaced TapOutcome = "replaced"
	TapCleared  TapOutcome = "cleared"
)

// TapResult carries the outcome of one tap and, for replaced/cleared, the
// kind that was in the cell before.
type TapResult struct {
	Outcome  TapOutcome
	Previous string
}

// reactionCell parameterizes the engine over its two parallel tables. The
// state machine below is identical for tweets and comments; only the table
// and target column differ.
type reactionCell struct {
	table     string
	targetCol string
	targetID  string
	userID    string
	kind      string
	cacheKey  string
}

func (s *Service) TapTweet(userID string, tweetID string, kindSlug string) (*TapResult, error) {
	return s.tap(reactionCell{
		table:     "tweet_reactions",
		targetCol: "tweet_id",
		targetID:  tweetID,
		userID:    userID,
		kind:      kindSlug,
		cacheKey:  utils.TweetReactionsKey(tweetID),
	}, func(tx *gorm.DB) error {
		var tweet model.Tweet
		if res := tx.Where("id = ?", tweetID).First(&tweet); res.RowsAffected != 1 {
			return errors.Wrapf(ErrNotFound, "tweet %s", tweetID)
		}
		return nil
	})
}

func (s *Service) TapComment(userID string, commentID string, kindSlug string) (*TapResult, error) {
	return s.tap(reactionCell{
		table:     "comment_reactions",
		targetCol: "comment_id",
		targetID:  commentID,
		userID:    userID,
		kind:      kindSlug,
		cacheKey:  utils.CommentReactionsKey(commentID),
	}, func(tx *gorm.DB) error {
		var comment model.Comment
		if res := tx.Where("id = ?", commentID).First(&comment); res.RowsAffected != 1 {
			return errors.Wrapf(ErrNotFound, "comment %s", commentID)
		}
		return nil
	})
}

// tap runs the reaction state machine for one (user, target) cell in a single
// transaction:
//
//	empty cell            -> insert, Created
//	same kind in cell     -> delete, Cleared
//	different kind in cell -> update in place, Replaced
//
// The insert goes through ON CONFLICT DO NOTHING on the cell's primary key,
// so the database's uniqueness constraint is the serialization point. When
// the insert is a no-op the existing row is re-read under a row-level lock
// and the branch is taken on what the lock observed. The transaction is
// replayed once on transient failures; it is safe to replay because every
// statement derives from the cell's current state.
func (s *Service) tap(cell reactionCell, resolveTarget utils.GormTransaction) (*TapResult, error) {
	var result TapResult
	err := utils.WithTxRetry(s.DB, func(tx *gorm.DB) error {
		result = TapResult{}

		if err := resolveTarget(tx); err != nil {
			return err
		}
		var kind model.ReactionKind
		if res := tx.Where("slug = ?", cell.kind).First(&kind); res.RowsAffected != 1 {
			return errors.Wrapf(ErrNotFound, "reaction kind %s", cell.kind)
		}

		// A concurrent clear can make the cell vanish between the insert and
		// the locked read; in that case the tap starts over against the now
		// empty cell. A couple of rounds is plenty, the window is one
		// statement wide.
		for attempt := 0; attempt < 3; attempt++ {
			res := tx.Table(cell.table).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: cell.targetCol}},
				DoNothing: true,
			}).Create(map[string]interface{}{
				"user_id":      cell.userID,
				cell.targetCol: cell.targetID,
				"kind_slug":    cell.kind,
				"created_at":   time.Now(),
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				result.Outcome = TapCreated
				return nil
			}

			// The cell is occupied; lock it and branch on its kind.
			var existing struct{ KindSlug string }
			err := tx.Table(cell.table).
				Select("kind_slug").
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ? AND "+cell.targetCol+" = ?", cell.userID, cell.targetID).
				Take(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			if existing.KindSlug == cell.kind {
				// Re-tap with the same kind clears the cell. The row is deleted,
				// never left behind with a null kind.
				delErr := tx.Exec(
					"DELETE FROM "+cell.table+" WHERE user_id = ? AND "+cell.targetCol+" = ?",
					cell.userID, cell.targetID,
				).Error
				if delErr != nil {
					return delErr
				}
				result = TapResult{Outcome: TapCleared, Previous: existing.KindSlug}
				return nil
			}

			updErr := tx.Table(cell.table).
				Where("user_id = ? AND "+cell.targetCol+" = ?", cell.userID, cell.targetID).
				Update("kind_slug", cell.kind).Error
			if updErr != nil {
				return updErr
			}
			result = TapResult{Outcome: TapReplaced, Previous: existing.KindSlug}
			return nil
		}
		return errors.Wrap(ErrTransient, "reaction cell kept changing under concurrent taps")
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTapOutcome(string(result.Outcome))
	if err := s.Cache.InvalidateReactionCounts(cell.cacheKey); err != nil {
		// A failed invalidation only delays the aggregate by the cache TTL.
		return &result, nil
	}
	return &result, nil
}

// TweetReactions returns the slug->count aggregate for one tweet; zero counts
// are omitted.
func (s *Service) TweetReactions(tweetID string) (map[string]int, error) {
	return s.reactionCounts("tweet_reactions", "tweet_id", tweetID, utils.TweetReactionsKey(tweetID))
}

// CommentReactions returns the slug->count aggregate for one comment.
func (s *Service) CommentReactions(commentID string) (map[string]int, error) {
	return s.reactionCounts("comment_reactions", "comment_id", commentID, utils.CommentReactionsKey(commentID))
}

func (s *Service) reactionCounts(table string, targetCol string, targetID string, cacheKey string) (map[string]int, error) {
	if counts, ok := s.Cache.GetReactionCounts(cacheKey); ok {
		return counts, nil
	}

	var rows []struct {
		KindSlug string
		Count    int
	}
	err := s.DB.Table(table).
		Select("kind_slug, count(*) as count").
		Where(targetCol+" = ?", targetID).
		Group("kind_slug").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.KindSlug] = row.Count
	}
	s.Cache.SetReactionCounts(cacheKey, counts)
	return counts, nil
}

// TweetReactionsBatch aggregates reactions for many tweets in one query, used
// when serializing listings and feeds.
func (s *Service) TweetReactionsBatch(tweetIDs []string) (map[string]map[string]int, error) {
	return s.reactionCountsBatch("tweet_reactions", "tweet_id", tweetIDs)
}

// CommentReactionsBatch aggregates reactions for many comments in one query.
func (s *Service) CommentReactionsBatch(commentIDs []string) (map[string]map[string]int, error) {
	return s.reactionCountsBatch("comment_reactions", "comment_id", commentIDs)
}

func (s *Service) reactionCountsBatch(table string, targetCol string, targetIDs []string) (map[string]map[string]int, error) {
	byTarget := map[string]map[string]int{}
	if len(targetIDs) == 0 {
		return byTarget, nil
	}

	var rows []struct {
		TargetID string
		KindSlug string
		Count    int
	}
	err := s.DB.Table(table).
		Select(targetCol+" as target_id, kind_slug, count(*) as count").
		Where(targetCol+" IN ?", targetIDs).
		Group(targetCol + ", kind_slug").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if byTarget[row.TargetID] == nil {
			byTarget[row.TargetID] = map[string]int{}
		}
		byTarget[row.TargetID][row.KindSlug] = row.Count
	}
	return byTarget, nil
}
