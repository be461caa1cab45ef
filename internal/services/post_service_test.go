package services_test

import (
	"context"
	errs "errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/blog-backend/internal/domain/entities"
	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/domain/ports"
	"github.com/rafabene/blog-backend/internal/domain/repositories"
	"github.com/rafabene/blog-backend/internal/infrastructure/logging"
	"github.com/rafabene/blog-backend/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/blog-backend/internal/services"
)

// authorGoneRepo grava o post apontando para um autor que já não existe,
// como se ele tivesse sido removido entre a checagem e o insert
type authorGoneRepo struct {
	repositories.PostRepository
}

func (r authorGoneRepo) Create(ctx context.Context, post *entities.Post) error {
	post.AuthorID = 999
	return r.PostRepository.Create(ctx, post)
}

// failingPostUpdateRepo grava e depois falha, para provar o rollback
type failingPostUpdateRepo struct {
	repositories.PostRepository
}

func (r failingPostUpdateRepo) Update(ctx context.Context, post *entities.Post) error {
	if err := r.PostRepository.Update(ctx, post); err != nil {
		return err
	}
	return errs.New("disk I/O error")
}

// failingDeleteRepo remove e depois falha, para provar o rollback
type failingDeleteRepo struct {
	repositories.PostRepository
}

func (r failingDeleteRepo) Delete(ctx context.Context, id uint) error {
	if err := r.PostRepository.Delete(ctx, id); err != nil {
		return err
	}
	return errs.New("disk I/O error")
}

var _ = Describe("PostService", func() {
	var (
		ctx      context.Context
		clock    *fakeClock
		uow      ports.UnitOfWork
		userRepo repositories.UserRepository
		postRepo repositories.PostRepository
		accounts *services.AccountService
		service  *services.PostService
		bob      *entities.User
	)

	withRepo := func(repo repositories.PostRepository) *services.PostService {
		return services.NewPostService(repo, userRepo, uow, logging.NewNopLogger()).WithClock(clock.Now)
	}

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		ctx = context.Background()
		clock = &fakeClock{t: base}

		db := openTestDB()
		uow = gormstore.NewUnitOfWork(db)
		userRepo = gormstore.NewUserRepository(db)
		postRepo = gormstore.NewPostRepository(db)

		accounts = services.NewAccountService(userRepo, uow, testHasher(), logging.NewNopLogger())
		service = withRepo(postRepo)

		var err error
		bob, err = accounts.Register(ctx, services.RegisterInput{Name: "bob", Email: "b@x.com", Password: "pw123"})
		Expect(err).NotTo(HaveOccurred())
	})

	create := func(title string, authorID uint) *services.PostWithAuthor {
		post, err := service.CreatePost(ctx, services.CreatePostInput{Title: title, Content: "body", AuthorID: authorID})
		Expect(err).NotTo(HaveOccurred())
		return post
	}

	Describe("CreatePost", func() {
		It("cria o post com o nome do autor e timestamps iguais", func() {
			url := "https://img.example.com/hi.png"
			post, err := service.CreatePost(ctx, services.CreatePostInput{
				Title:    " Hi ",
				Content:  "World",
				ImageURL: &url,
				AuthorID: bob.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(post.ID).NotTo(BeZero())
			Expect(post.Title).To(Equal("Hi"))
			Expect(post.Author).To(Equal("bob"))
			Expect(*post.ImageURL).To(Equal(url))
			Expect(post.CreatedAt).To(BeTemporally("==", base))
			Expect(post.UpdatedAt).To(BeTemporally("==", post.CreatedAt))
		})

		DescribeTable("rejeita campos ausentes",
			func(title, content string, authorID uint) {
				_, err := service.CreatePost(ctx, services.CreatePostInput{Title: title, Content: content, AuthorID: authorID})
				Expect(err).To(MatchError(errors.ErrPostFieldsRequired))
				Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
			},
			Entry("sem título", "", "World", uint(1)),
			Entry("título só com espaços", "  ", "World", uint(1)),
			Entry("conteúdo só com espaços", "Hi", " \n ", uint(1)),
			Entry("sem autor", "Hi", "World", uint(0)),
		)

		It("rejeita autor inexistente mesmo com dados válidos", func() {
			_, err := service.CreatePost(ctx, services.CreatePostInput{Title: "Hi", Content: "World", AuthorID: 999})
			Expect(err).To(MatchError(errors.ErrAuthorNotFound))
			Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))
		})

		It("traduz a violação da FK no commit em autor não encontrado", func() {
			_, err := withRepo(authorGoneRepo{postRepo}).CreatePost(ctx, services.CreatePostInput{Title: "Hi", Content: "World", AuthorID: bob.ID})
			Expect(err).To(MatchError(errors.ErrAuthorNotFound))

			posts, err := service.ListPosts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())
		})
	})

	Describe("GetPost", func() {
		It("resolve o autor no round trip usuário -> post -> busca", func() {
			created := create("Hi", bob.ID)

			post, err := service.GetPost(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Author).To(Equal(bob.Name))
			Expect(post.Content).To(Equal("body"))
		})

		It("retorna not found para id desconhecido", func() {
			_, err := service.GetPost(ctx, 404)
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("UpdatePost", func() {
		var post *services.PostWithAuthor

		BeforeEach(func() {
			url := "https://img.example.com/a.png"
			var err error
			post, err = service.CreatePost(ctx, services.CreatePostInput{Title: "Hi", Content: "World", ImageURL: &url, AuthorID: bob.ID})
			Expect(err).NotTo(HaveOccurred())
		})

		It("renova updated_at mesmo com o relógio parado", func() {
			updated, err := service.UpdatePost(ctx, post.ID, services.UpdatePostInput{Title: "Hello"})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Title).To(Equal("Hello"))
			Expect(updated.UpdatedAt).To(BeTemporally(">", updated.CreatedAt))
			Expect(updated.CreatedAt).To(BeTemporally("==", base))

			stored, err := service.GetPost(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.UpdatedAt).To(BeTemporally("==", updated.UpdatedAt))
		})

		It("usa o horário atual quando o relógio avança", func() {
			clock.Set(base.Add(time.Hour))

			updated, err := service.UpdatePost(ctx, post.ID, services.UpdatePostInput{Content: "Everyone"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.UpdatedAt).To(BeTemporally("==", base.Add(time.Hour)))
		})

		It("ignora título e conteúdo vazios e mantém a imagem não informada", func() {
			updated, err := service.UpdatePost(ctx, post.ID, services.UpdatePostInput{})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Title).To(Equal("Hi"))
			Expect(updated.Content).To(Equal("World"))
			Expect(updated.ImageURL).NotTo(BeNil())
			Expect(updated.Author).To(Equal("bob"))
		})

		It("grava image_url vazia quando informada", func() {
			empty := ""
			updated, err := service.UpdatePost(ctx, post.ID, services.UpdatePostInput{ImageURL: &empty, ImageURLSet: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ImageURL).NotTo(BeNil())
			Expect(*updated.ImageURL).To(BeEmpty())
		})

		It("limpa image_url com null explícito", func() {
			_, err := service.UpdatePost(ctx, post.ID, services.UpdatePostInput{ImageURL: nil, ImageURLSet: true})
			Expect(err).NotTo(HaveOccurred())

			stored, err := service.GetPost(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ImageURL).To(BeNil())
		})

		It("retorna not found para id desconhecido", func() {
			_, err := service.UpdatePost(ctx, 999, services.UpdatePostInput{Title: "x"})
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})

		It("faz rollback e retorna erro de persistência quando a gravação falha", func() {
			clock.Set(base.Add(time.Hour))

			_, err := withRepo(failingPostUpdateRepo{postRepo}).UpdatePost(ctx, post.ID, services.UpdatePostInput{Title: "Changed"})
			Expect(errors.KindOf(err)).To(Equal(errors.KindPersistence))
			Expect(errors.MessageOf(err)).To(Equal(errors.MsgUpdatePostFailed))

			stored, err := service.GetPost(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Title).To(Equal("Hi"))
			Expect(stored.UpdatedAt).To(BeTemporally("==", base))
		})
	})

	Describe("DeletePost", func() {
		It("remove o post definitivamente", func() {
			post := create("Bye", bob.ID)

			Expect(service.DeletePost(ctx, post.ID)).To(Succeed())

			_, err := service.GetPost(ctx, post.ID)
			Expect(err).To(MatchError(errors.ErrPostNotFound))

			Expect(service.DeletePost(ctx, post.ID)).To(MatchError(errors.ErrPostNotFound))
		})

		It("faz rollback e retorna erro de persistência quando a remoção falha", func() {
			post := create("Stay", bob.ID)

			err := withRepo(failingDeleteRepo{postRepo}).DeletePost(ctx, post.ID)
			Expect(errors.KindOf(err)).To(Equal(errors.KindPersistence))
			Expect(errors.MessageOf(err)).To(Equal(errors.MsgStoreFailed))

			stored, err := service.GetPost(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Title).To(Equal("Stay"))
		})
	})

	Describe("ListPosts", func() {
		It("retorna lista vazia sem posts", func() {
			posts, err := service.ListPosts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())
		})

		It("ordena por created_at decrescente para qualquer ordem de inserção", func() {
			carol, err := accounts.Register(ctx, services.RegisterInput{Name: "carol", Email: "c@x.com", Password: "pw"})
			Expect(err).NotTo(HaveOccurred())

			offsets := []time.Duration{2 * time.Hour, 0, 5 * time.Hour, time.Hour, 3 * time.Hour, time.Hour}
			for i, off := range offsets {
				clock.Set(base.Add(off))
				author := bob.ID
				if i%2 == 0 {
					author = carol.ID
				}
				create("p", author)
			}

			posts, err := service.ListPosts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(len(offsets)))

			for i := 1; i < len(posts); i++ {
				Expect(posts[i].CreatedAt).NotTo(BeTemporally(">", posts[i-1].CreatedAt))
			}
			for _, p := range posts {
				if p.AuthorID == carol.ID {
					Expect(p.Author).To(Equal("carol"))
				} else {
					Expect(p.Author).To(Equal("bob"))
				}
			}
		})
	})

	Describe("ListPostsByUser", func() {
		It("retorna not found para usuário desconhecido", func() {
			_, err := service.ListPostsByUser(ctx, 999)
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("retorna apenas os posts do autor, mais recentes primeiro", func() {
			carol, err := accounts.Register(ctx, services.RegisterInput{Name: "carol", Email: "c@x.com", Password: "pw"})
			Expect(err).NotTo(HaveOccurred())

			create("bob-1", bob.ID)
			clock.Set(base.Add(time.Minute))
			create("carol-1", carol.ID)
			clock.Set(base.Add(2 * time.Minute))
			create("bob-2", bob.ID)

			posts, err := service.ListPostsByUser(ctx, bob.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(2))
			Expect(posts[0].Title).To(Equal("bob-2"))
			Expect(posts[1].Title).To(Equal("bob-1"))
			Expect(posts[0].Author).To(Equal("bob"))
		})

		It("retorna lista vazia para usuário sem posts", func() {
			posts, err := service.ListPostsByUser(ctx, bob.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())
		})
	})
})
