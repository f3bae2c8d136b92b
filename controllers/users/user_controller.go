package userController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"storefront-api/configs"
	"storefront-api/models"
	"storefront-api/responses"
)

var validate = validator.New()

type UserController struct {
	users *mongo.Collection
}

func NewUserController(db *mongo.Database) *UserController {
	return &UserController{users: db.Collection("users")}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
}

func signToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.Id.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJWTSecret()))
}

func (uc *UserController) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	count, err := uc.users.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		return responses.FromError(c, err)
	}
	if count > 0 {
		return responses.Error(c, fiber.StatusBadRequest, "User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return responses.FromError(c, err)
	}

	now := time.Now()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Phone:     req.Phone,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := uc.users.InsertOne(ctx, user); err != nil {
		return responses.FromError(c, err)
	}

	token, err := signToken(user)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (uc *UserController) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	if err := uc.users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := signToken(user)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var user models.User
	if err := uc.users.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "User not found")
		}
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return responses.FromError(c, err)
		}
		set["password"] = string(hashed)
	}

	var user models.User
	err = uc.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userObjectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := uc.users.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}).SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return responses.FromError(c, err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	res, err := uc.users.DeleteOne(ctx, bson.M{"_id": userObjectID})
	if err != nil {
		return responses.FromError(c, err)
	}
	if res.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
}
